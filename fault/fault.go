// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrBalanceMismatch       = ProcessError("stored balance does not match sub-tree heights")
	ErrConfigurationNotTable = InvalidError("configuration did not return a table")
	ErrInvalidArgumentCount  = InvalidError("invalid argument count")
	ErrInvalidCount          = InvalidError("count must be positive")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidPoolLimit      = InvalidError("pool limit must not be negative")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrKeyNotFound           = NotFoundError("key not found")
	ErrKeyOrder              = ProcessError("keys are not in strictly increasing order")
	ErrNodeCount             = ProcessError("node count does not match tree contents")
	ErrParentLink            = ProcessError("parent link is inconsistent")
	ErrRateLimiting          = ProcessError("rate limit exceeded")
	ErrScriptFileNotFound    = NotFoundError("script file is not found")
	ErrTreeUnbalanced        = ProcessError("tree is not height balanced")
	ErrUnknownCommand        = InvalidError("unknown command")
	ErrValueMismatch         = ProcessError("stored value does not match")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
