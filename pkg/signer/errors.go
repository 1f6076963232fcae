package signer

import "errors"

var ErrUnknownAlgorithm = errors.New("signer.unknown_algorithm")
