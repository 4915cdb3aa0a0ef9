package service

import "errors"

var ErrTidakDitemukan = errors.New("generus tidak ditemukan")
