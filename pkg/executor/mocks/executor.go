package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/francescodonato/libfork/pkg/executor"
)

// Executor mock
type Executor struct {
	mock.Mock
}

// Execute provides a mock function with given fields: command, args
func (_m *Executor) Execute(command string, args ...string) (executor.TaskHandle, error) {
	callArgs := make([]interface{}, 0, len(args)+1)
	callArgs = append(callArgs, command)
	for _, a := range args {
		callArgs = append(callArgs, a)
	}
	ret := _m.Called(callArgs...)

	var r0 executor.TaskHandle
	if rf, ok := ret.Get(0).(func(string, ...string) executor.TaskHandle); ok {
		r0 = rf(command, args...)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(executor.TaskHandle)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(string, ...string) error); ok {
		r1 = rf(command, args...)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Name provides a mock function with given fields:
func (_m *Executor) Name() string {
	ret := _m.Called()

	var r0 string
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(string)
	}

	return r0
}
