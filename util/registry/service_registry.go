package registry

import "fmt"

// สำหรับกำหนด key ของ service ที่จะ export ข้ามโมดูล
type ServiceKey string

// สำหรับ map key กับ service ที่จะ export
type ProvidedService struct {
	Key   ServiceKey
	Value any
}

type ServiceRegistry interface {
	Register(key ServiceKey, svc any)
	Resolve(key ServiceKey) (any, error)
}

type serviceRegistry struct {
	services map[ServiceKey]any
}

func NewServiceRegistry() ServiceRegistry {
	return &serviceRegistry{
		services: make(map[ServiceKey]any),
	}
}

func (r *serviceRegistry) Register(key ServiceKey, svc any) {
	r.services[key] = svc
}

func (r *serviceRegistry) Resolve(key ServiceKey) (any, error) {
	svc, ok := r.services[key]
	if !ok {
		return nil, fmt.Errorf("service not found: %s", key)
	}
	return svc, nil
}

// ResolveAs ช่วย resolve service พร้อมแปลง type ให้เลย
func ResolveAs[T any](r ServiceRegistry, key ServiceKey) (T, error) {
	var empty T
	svc, err := r.Resolve(key)
	if err != nil {
		return empty, err
	}
	typed, ok := svc.(T)
	if !ok {
		return empty, fmt.Errorf("service %s has unexpected type %T", key, svc)
	}
	return typed, nil
}
