package poller

import (
	"context"
	"sync"
	"time"
)

// Poller รัน task ซ้ำตามรอบเวลาที่กำหนด จนกว่าจะถูกสั่ง Stop
// ผู้เรียกต้องเก็บ handle ไว้แล้วเรียก Stop ตอน teardown เสมอ
// เพื่อไม่ให้มีการอัปเดต state หลัง component ถูกปิดไปแล้ว
type Poller struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Start รัน task ทันทีหนึ่งครั้ง แล้วรันซ้ำทุก ๆ interval
func Start(interval time.Duration, task func(ctx context.Context)) *Poller {
	ctx, cancel := context.WithCancel(context.Background())
	p := &Poller{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(p.done)

		// รอบแรกรันทันที ไม่ต้องรอ tick แรก
		task(ctx)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				task(ctx)
			}
		}
	}()

	return p
}

// Stop หยุดการทำงานและรอให้รอบที่ค้างอยู่จบก่อน เรียกซ้ำได้
func (p *Poller) Stop() {
	p.once.Do(func() {
		p.cancel()
		<-p.done
	})
}
