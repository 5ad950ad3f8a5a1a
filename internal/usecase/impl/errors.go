package impl

import (
	"dealfinder/internal/domain/entity"
	domainerrors "dealfinder/internal/domain/errors"
	"dealfinder/internal/domain/repository"

	"github.com/pkg/errors"
)

// notFoundAs translates a repository sentinel into the matching application error.
func notFoundAs(err, sentinel error, appErr *domainerrors.BaseError, message string) error {
	if errors.Is(err, sentinel) {
		return appErr.WrapMessage(message)
	}

	return errors.Wrap(err, message)
}

func userNotFound(err error, message string) error {
	return notFoundAs(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, message)
}

func businessNotFound(err error, message string) error {
	return notFoundAs(err, repository.ErrBusinessNotFound, domainerrors.ErrBusinessNotFound, message)
}

func promotionNotFound(err error, message string) error {
	return notFoundAs(err, repository.ErrPromotionNotFound, domainerrors.ErrPromotionNotFound, message)
}

// invalid wraps field errors so the delivery layer can report them one by one.
func invalid(err error, message string) error {
	var fieldErrs entity.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return errors.Wrap(fieldErrs, message)
	}

	return errors.Wrap(domainerrors.ErrValidationFailed, message)
}

func invalidField(field, reason string) error {
	var errs entity.ValidationErrors
	errs.Add(field, "%s", reason)

	return errs
}
