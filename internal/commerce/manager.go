package commerce

import (
	"context"
	"fmt"
)

type Manager struct {
	gateways map[string]Gateway
}

func NewManager() *Manager {
	return &Manager{gateways: make(map[string]Gateway)}
}

func (m *Manager) RegisterGateway(name string, gateway Gateway) {
	m.gateways[name] = gateway
}

func (m *Manager) CreateCharge(ctx context.Context, provider string, req ChargeRequest) (ChargeResponse, error) {
	gateway, ok := m.gateways[provider]
	if !ok {
		return ChargeResponse{}, fmt.Errorf("gateway not registered: %s", provider)
	}
	return gateway.CreateCharge(ctx, req)
}
