package bunnum

import (
	"sync/atomic"
)

func (level *Level) AtomicLoad() Level {
	return Level(atomic.LoadInt32((*int32)(level)))
}

func (level *Level) AtomicStore(newLevel Level) {
	atomic.StoreInt32((*int32)(level), int32(newLevel))
}
