package repository

import (
	"errors"
	"fmt"

	"github.com/Keshavsaini22/slooze-assignment/pkg/apperr"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// notFound แปลง gorm.ErrRecordNotFound เป็น apperr NotFound
func notFound(err error, format string, args ...any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.Wrap(apperr.KindNotFound, err, fmt.Sprintf(format, args...))
	}
	return err
}

// IsBusy รายงานว่า sqlite ปฏิเสธเพราะอีก connection ถือ lock อยู่เกิน busy_timeout
func IsBusy(err error) bool {
	var se sqlite3.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Code == sqlite3.ErrBusy || se.Code == sqlite3.ErrLocked
}
