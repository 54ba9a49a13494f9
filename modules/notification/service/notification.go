package service

import (
	"context"
	"fmt"
	"sync"

	"edu-client/modules/notification/internal/gateway"
	"edu-client/modules/notification/internal/model"
	"edu-client/util/logger"
)

// NotificationService เก็บ feed แจ้งเตือนล่าสุดจาก notification service
type NotificationService interface {
	Refresh(ctx context.Context) error
	Feed() []model.Notification
}

type notificationService struct {
	notificationGW gateway.NotificationGateway

	mu   sync.RWMutex
	feed []model.Notification
}

func NewNotificationService(notificationGW gateway.NotificationGateway) NotificationService {
	return &notificationService{notificationGW: notificationGW}
}

// Refresh ดึง feed ชุดล่าสุด ปลายทางเรียงเก่าไปใหม่ แต่ฝั่งแสดงผล
// ต้องการใหม่สุดขึ้นก่อน เลยกลับลำดับตอนเก็บ
// ถ้าดึงไม่สำเร็จให้คง feed เดิมไว้
func (s *notificationService) Refresh(ctx context.Context) error {
	notifications, err := s.notificationGW.ListNotifications(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn(fmt.Sprintf("failed to refresh notifications: %v", err))
		return err
	}

	for i, j := 0, len(notifications)-1; i < j; i, j = i+1, j-1 {
		notifications[i], notifications[j] = notifications[j], notifications[i]
	}

	s.mu.Lock()
	s.feed = notifications
	s.mu.Unlock()

	return nil
}

func (s *notificationService) Feed() []model.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Notification, len(s.feed))
	copy(out, s.feed)
	return out
}
