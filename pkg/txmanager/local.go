package txmanager

import (
	"context"
	"sync"
)

// LocalManager сериализует транзакционные блоки внутри одного процесса
// Используется с in-memory хранилищем, где нет настоящих транзакций
type LocalManager struct {
	mu sync.Mutex
}

// NewLocalManager создает локальный менеджер
func NewLocalManager() *LocalManager {
	return &LocalManager{}
}

// Do выполняет fn под общим мьютексом
func (m *LocalManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

// DoSerializable эквивалентен Do: все блоки и так выполняются последовательно
func (m *LocalManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

// DoReadOnly эквивалентен Do
func (m *LocalManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}
