package tax

import "errors"

var ErrTaxSettingsNotFound = errors.New("tax settings not found")
