// Package binding plugs the zap backend into the facade.
//
// Applications call Install once from main, before the first facade call. The two
// binders are process-wide singletons built lazily and never mutated afterwards.
package binding

import (
	"git.famapp.in/fampay-inc/logbind/pkg/facade"
	"github.com/pkg/errors"
)

// Install registers both binders with the facade.
func Install() error {
	if err := facade.RegisterLoggerBinder(GetLoggerBinder()); err != nil {
		return errors.Wrap(err, "failed to register logger binder")
	}
	if err := facade.RegisterMDCBinder(GetMDCBinder()); err != nil {
		return errors.Wrap(err, "failed to register context adapter binder")
	}
	return nil
}

// MustInstall is Install for main packages.
func MustInstall() {
	if err := Install(); err != nil {
		panic(err)
	}
}
