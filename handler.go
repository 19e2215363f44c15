// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringmpsc

// Handler processes one item during batch consumption (ConsumeBatch,
// ConsumeAll). Process must not call back into the producer API of the
// ring it's being driven from — Ring is single-consumer, and re-entering
// Reserve/Commit from inside Process has no defined interaction with the
// in-progress batch. Process should be lightweight; long work should
// accumulate indices or copies and run after the batch call returns.
type Handler[T any] interface {
	Process(item *T)
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc[T any] func(item *T)

// Process calls f.
func (f HandlerFunc[T]) Process(item *T) {
	f(item)
}
