package conf

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
)

const testAppName = "testAppName"

var (
	customFlag = NewStringFlag("custom_arg", "help", "default")
	retryFlag  = NewIntFlag("retries", "help", 3)

	// Positional arguments are registered by the binary; the tests register
	// their own pair to exercise the same path.
	binaryArg = NewStringArg("binary", "path to some binary")
	coresArg  = NewIntArg("cores", "core count")
)

func clearEnv() {
	// Clear all environment variables in context of that test.
	logLevelFlag.clear()
	customFlag.clear()
	retryFlag.clear()
}

func TestFlag(t *testing.T) {
	Convey("While using Flag struct, it should construct proper memsweep environment var name", t, func() {
		So(customFlag.envName(), ShouldEqual, "MEMSWEEP_CUSTOM_ARG")
	})
}

func TestConf(t *testing.T) {
	Convey("While using Conf pkg", t, func() {
		clearEnv()
		defer clearEnv()

		SetAppName(testAppName)

		Convey("Name should match to specified one", func() {
			So(AppName(), ShouldEqual, testAppName)
		})

		Convey("Log level default can be fetched before parse", func() {
			So(LogLevel(), ShouldEqual, logrus.ErrorLevel)
		})

		Convey("Flag values fall back to defaults before parse", func() {
			So(customFlag.Value(), ShouldEqual, "default")
			So(retryFlag.Value(), ShouldEqual, 3)
		})

		Convey("Int flags can be fetched from env", func() {
			os.Setenv(retryFlag.envName(), "7")
			defer clearEnv()

			err := ParseArgs([]string{"/bin/true", "4"})
			So(err, ShouldBeNil)

			So(retryFlag.Value(), ShouldEqual, 7)
		})

		Convey("Positional arguments are parsed in definition order", func() {
			err := ParseArgs([]string{"/bin/true", "4"})
			So(err, ShouldBeNil)

			So(binaryArg.Value(), ShouldEqual, "/bin/true")
			So(coresArg.Value(), ShouldEqual, 4)
		})

		Convey("Missing positional arguments fail the parse", func() {
			err := ParseArgs([]string{})
			So(err, ShouldNotBeNil)
		})

		Convey("Log level can be fetched from env", func() {
			os.Setenv(logLevelFlag.envName(), "debug")
			defer clearEnv()

			// Environment variables are applied during parse.
			err := ParseArgs([]string{"/bin/true", "4"})
			So(err, ShouldBeNil)

			So(LogLevel(), ShouldEqual, logrus.DebugLevel)
		})
	})
}
