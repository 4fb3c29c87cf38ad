package export_backup

import "errors"

var (
	// ErrSinkWrite возвращается при ошибке записи снапшота в приемник
	ErrSinkWrite = errors.New("export_backup: failed to write snapshot")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("export_backup: internal error")
)
