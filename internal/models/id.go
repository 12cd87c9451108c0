package models

import (
	"fmt"
	"time"
)

// NewID генерирует идентификатор вида "{kind}-{unixMillis}".
// Уникальность хранилищем не проверяется, формат нигде не разбирается обратно.
func NewID(kind string) string {
	return fmt.Sprintf("%s-%d", kind, time.Now().UnixMilli())
}
