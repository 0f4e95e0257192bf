package entity

import (
	"strconv"
	"sync"
	"time"
)

var (
	idMu     sync.Mutex
	idLastMs int64
)

// NewID genera el identificador de una entidad persistida: timestamp en
// milisegundos, monotónico dentro del proceso para no repetir ante creaciones
// en el mismo milisegundo. Los IDs nunca se reutilizan.
func NewID() string {
	idMu.Lock()
	defer idMu.Unlock()
	ms := time.Now().UnixMilli()
	if ms <= idLastMs {
		ms = idLastMs + 1
	}
	idLastMs = ms
	return strconv.FormatInt(ms, 10)
}
