package controllers

import "errors"

var ErrForbidden = errors.New("forbidden access")
