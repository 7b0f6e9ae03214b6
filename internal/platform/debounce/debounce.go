// Package debounce は入力バーストが静まるまで処理を遅延させる
// 単一スロットのタイマーを提供します。
package debounce

import (
	"sync"
	"time"
)

// Debouncer は Trigger のたびに待機中の処理を破棄して計時をやり直します。
// 静止期間内の連続した呼び出しでは最後の処理だけが実行されます。
type Debouncer struct {
	interval time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// New は指定の静止期間を持つ Debouncer を生成します。
func New(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// Trigger は fn を静止期間の後に実行するよう予約します。待機中の予約が
// あれば破棄されます。fn は専用のタイマーゴルーチンで実行されます。
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, fn)
}

// Stop は待機中の予約を破棄します。実行済みの処理には影響しません。
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
