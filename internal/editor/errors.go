package editor

import "errors"

var (
	// ErrDraftIncomplete is returned by AddItem when the draft lacks a name
	// or an English name. The list is not touched.
	ErrDraftIncomplete = errors.New("draft must have both names")
	// ErrInvalidPatch wraps validator errors for patches carrying an icon or
	// color outside the editor's catalog.
	ErrInvalidPatch = errors.New("invalid item patch")
	// ErrSaveRejected is returned when the backend answered without error but
	// did not acknowledge the write.
	ErrSaveRejected = errors.New("save was not acknowledged")
	// ErrItemNotFound is returned when an operation needs an existing item.
	ErrItemNotFound = errors.New("item not found")
	// ErrModalBusy is returned when the modal is already open.
	ErrModalBusy = errors.New("modal is already open")
	// ErrModalClosed is returned by modal operations while no modal is open.
	ErrModalClosed = errors.New("modal is closed")
	// ErrNoPendingDelete is returned by ConfirmDelete without a prior
	// RequestDelete.
	ErrNoPendingDelete = errors.New("no delete is awaiting confirmation")
	// ErrUnknownPolicy is returned by ParsePolicy.
	ErrUnknownPolicy = errors.New("unknown save policy")
)
