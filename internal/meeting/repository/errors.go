package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert meeting")
	ErrFailedToGet    = errors.New("failed to get meeting")
	ErrFailedToList   = errors.New("failed to list meetings")
	ErrFailedToUpdate = errors.New("failed to update meeting")
	ErrFailedToDelete = errors.New("failed to delete meeting")
)
