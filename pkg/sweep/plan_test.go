package sweep

import (
	"strconv"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestKinds(t *testing.T) {
	Convey("While deriving kind families", t, func() {
		Convey("A bench token without the 'T' prefix gets the 4-element scheduler family", func() {
			family := schedulerKinds("fib")
			So(family, ShouldHaveLength, 4)
			So(family[0], ShouldEqual, Kind("libfork.*lazy.*fan"))
			So(family[3], ShouldEqual, Kind("libfork.*busy.*seq"))
		})

		Convey("A bench token with the 'T' prefix gets the 8-element scheduler family", func() {
			family := schedulerKinds("T1")
			So(family, ShouldHaveLength, 8)
			So(family[0], ShouldEqual, Kind("libfork.*_alloc_.*lazy.*fan"))
			So(family[4], ShouldEqual, Kind("libfork.*_coalloc_.*lazy.*fan"))
		})

		Convey("The kind universe keeps the fixed order", func() {
			kinds := Kinds("fib")
			So(kinds, ShouldHaveLength, 10)
			So(kinds[0], ShouldEqual, KindWarmup)
			So(kinds[1], ShouldEqual, KindCalibrate)
			So(kinds[2], ShouldEqual, KindSerial)
			So(kinds[7], ShouldEqual, KindOMP)
			So(kinds[8], ShouldEqual, KindTBB)
			So(kinds[9], ShouldEqual, KindTaskflow)
		})
	})
}

func TestBuildFilter(t *testing.T) {
	Convey("While building benchmark filters", t, func() {
		Convey("The calibrate filter is always the literal string", func() {
			So(BuildFilter(KindCalibrate, "fib", 1), ShouldEqual, "calibrate")
			So(BuildFilter(KindCalibrate, "T1", 16), ShouldEqual, "calibrate")
		})

		Convey("The serial filter carries no core-count suffix", func() {
			So(BuildFilter(KindSerial, "fib", 1), ShouldEqual, "fib.*serial")
		})

		Convey("A 'T' bench token flips the serial filter to the uts form", func() {
			So(BuildFilter(KindSerial, "T1", 1), ShouldEqual, "uts.*serial.*T1")
		})

		Convey("Every other kind appends the core-count suffix", func() {
			So(BuildFilter("libfork.*lazy.*fan", "fib", 8), ShouldEqual, "fib.*libfork.*lazy.*fan.*/8/")
			So(BuildFilter(KindTBB, "T1", 16), ShouldEqual, "uts.*tbb.*T1.*/16/")
			So(BuildFilter(KindWarmup, "fib", 1), ShouldEqual, "fib.*NOTESTNAMEDTHIS.*/1/")
		})

		Convey("The suffix is the literal .*/cores/", func() {
			for _, cores := range coreCandidates {
				filter := BuildFilter(KindOMP, "fib", cores)
				So(strings.HasSuffix(filter, ".*/"+strconv.Itoa(cores)+"/"), ShouldBeTrue)
			}
		})
	})
}

func TestPlan(t *testing.T) {
	Convey("While planning a sweep", t, func() {
		Convey("Single-core-only kinds emit exactly one trial regardless of MaxCores", func() {
			trials := Plan(SweepConfig{Bench: "fib", MaxCores: 112})

			count := map[Kind]int{}
			for _, trial := range trials {
				count[trial.Kind]++
			}

			So(count[KindWarmup], ShouldEqual, 1)
			So(count[KindCalibrate], ShouldEqual, 1)
			So(count[KindSerial], ShouldEqual, 1)
			So(count[KindOMP], ShouldEqual, len(coreCandidates))
		})

		Convey("The core-count sequence is the candidate prefix bounded by MaxCores", func() {
			trials := Plan(SweepConfig{Bench: "fib", MaxCores: 10})

			var ompCores []int
			for _, trial := range trials {
				if trial.Kind == KindOMP {
					ompCores = append(ompCores, trial.Cores)
				}
			}

			So(ompCores, ShouldResemble, []int{1, 2, 4, 8})
		})

		Convey("With MaxCores 1 there is one trial per kind, in kind order", func() {
			trials := Plan(SweepConfig{Bench: "foo", MaxCores: 1})
			kinds := Kinds("foo")

			So(trials, ShouldHaveLength, len(kinds))
			for i, trial := range trials {
				So(trial.Kind, ShouldEqual, kinds[i])
				So(trial.Cores, ShouldEqual, 1)
			}
		})

		Convey("Sample counts are 100 for serial and calibrate, 5 otherwise", func() {
			So(Trial{Kind: KindSerial}.Samples(), ShouldEqual, 100)
			So(Trial{Kind: KindCalibrate}.Samples(), ShouldEqual, 100)
			So(Trial{Kind: KindWarmup}.Samples(), ShouldEqual, 5)
			So(Trial{Kind: "libfork.*lazy.*fan"}.Samples(), ShouldEqual, 5)
		})
	})
}
