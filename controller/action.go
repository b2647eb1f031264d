package controller

import (
	"fmt"
	"net/http"
	"reflect"
)

// ActionFunc is the normalised form of a controller action.
type ActionFunc func(http.ResponseWriter, *http.Request) error

func bindAction(ctrl any, controllerName, action string) (ActionFunc, error) {
	if action == "" {
		return nil, fmt.Errorf("%w: %s: action is required", ErrInvalidAction, controllerName)
	}

	method := reflect.ValueOf(ctrl).MethodByName(action)
	if !method.IsValid() {
		return nil, fmt.Errorf("%w: %s has no exported method %s", ErrInvalidAction, controllerName, action)
	}

	switch fn := method.Interface().(type) {
	case func(http.ResponseWriter, *http.Request) error:
		return fn, nil
	case func(http.ResponseWriter, *http.Request):
		return func(w http.ResponseWriter, r *http.Request) error {
			fn(w, r)
			return nil
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s.%s has signature %s", ErrInvalidAction, controllerName, action, method.Type())
	}
}
