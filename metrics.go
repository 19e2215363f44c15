// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringmpsc

// Metrics holds send/recv/batch counters for a Ring or the Channel-wide
// sum across all of its rings. It is always returned by value from
// GetMetrics; when a Ring was built with EnableMetrics=false the returned
// Metrics is always the zero value, since no counter updates ever ran.
type Metrics struct {
	MessagesSent     uint64
	MessagesReceived uint64
	BatchesSent      uint64
	BatchesReceived  uint64
	ReserveSpins     uint64
}

func (m *Metrics) add(o Metrics) {
	m.MessagesSent += o.MessagesSent
	m.MessagesReceived += o.MessagesReceived
	m.BatchesSent += o.BatchesSent
	m.BatchesReceived += o.BatchesReceived
	m.ReserveSpins += o.ReserveSpins
}
