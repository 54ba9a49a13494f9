package eventbus

import (
	"context"
	"sync"

	"edu-client/util/logger"
)

type EventName string

type Event interface {
	EventName() EventName
}

type EventHandler interface {
	Handle(ctx context.Context, event Event) error
}

type EventBus interface {
	Subscribe(eventName EventName, handler EventHandler)
	Publish(ctx context.Context, event Event)
}

// implementation ของ EventBus แบบง่าย ๆ ที่เก็บ subscriber ไว้ใน memory
type inmemoryEventBus struct {
	subscribers map[EventName][]EventHandler
	mu          sync.RWMutex
}

func NewInMemoryEventBus() EventBus {
	return &inmemoryEventBus{
		subscribers: make(map[EventName][]EventHandler),
	}
}

func (eb *inmemoryEventBus) Subscribe(eventName EventName, handler EventHandler) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.subscribers[eventName] = append(eb.subscribers[eventName], handler)
}

// Publish ส่ง event ไปยัง handler ทุกตัวที่ subscribe event ชื่อเดียวกัน
// เรียกแบบ synchronous ตามลำดับที่ subscribe เพราะ handler อย่างการล้าง
// entitlement ตอนเปลี่ยน identity ต้องทำให้เสร็จก่อน Publish จะ return
func (eb *inmemoryEventBus) Publish(ctx context.Context, event Event) {
	eb.mu.RLock()
	handlers := eb.subscribers[event.EventName()]
	eb.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler.Handle(ctx, event); err != nil {
			// handler ที่พังไม่ควรทำให้ตัวอื่นไม่ถูกเรียก แค่ log ไว้พอ
			logger.FromContext(ctx).Warn("error handling event " + string(event.EventName()) + ": " + err.Error())
		}
	}
}
