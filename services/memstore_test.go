package services_test

import (
	"context"
	"sync"

	"orderalone/models"
	"orderalone/services"
)

type memData struct {
	menus  map[uint]models.Menu
	games  map[uint]models.Game
	orders map[uint]models.Order
	nextID uint
}

func (d *memData) clone() *memData {
	c := &memData{
		menus:  make(map[uint]models.Menu, len(d.menus)),
		games:  make(map[uint]models.Game, len(d.games)),
		orders: make(map[uint]models.Order, len(d.orders)),
		nextID: d.nextID,
	}
	for k, v := range d.menus {
		c.menus[k] = v
	}
	for k, v := range d.games {
		c.games[k] = v
	}
	for k, v := range d.orders {
		c.orders[k] = v
	}
	return c
}

// memStore is an in-memory services.Store. Transactions are serialised and
// applied only when fn succeeds.
type memStore struct {
	mu   sync.Mutex
	data *memData
}

func newMemStore() *memStore {
	return &memStore{data: &memData{
		menus:  map[uint]models.Menu{},
		games:  map[uint]models.Game{},
		orders: map[uint]models.Order{},
	}}
}

func (s *memStore) addMenu(menu models.Menu) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.menus[menu.ID] = menu
}

func (s *memStore) setMenuLevel(id uint, level int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.data.menus[id]
	m.Level = level
	s.data.menus[id] = m
}

func (s *memStore) tx() *memTx { return &memTx{data: s.data} }

func (s *memStore) FindMenu(ctx context.Context, id uint) (*models.Menu, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tx().FindMenu(ctx, id)
}

func (s *memStore) FindGame(ctx context.Context, id uint) (*models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tx().FindGame(ctx, id)
}

func (s *memStore) FindOrder(ctx context.Context, id uint) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tx().FindOrder(ctx, id)
}

func (s *memStore) CreateGame(ctx context.Context, game *models.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tx().CreateGame(ctx, game)
}

func (s *memStore) CreateOrder(ctx context.Context, order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tx().CreateOrder(ctx, order)
}

func (s *memStore) UpdateGameScore(ctx context.Context, gameID uint, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tx().UpdateGameScore(ctx, gameID, delta)
}

func (s *memStore) MarkOrderTerminal(ctx context.Context, orderID uint, correct bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tx().MarkOrderTerminal(ctx, orderID, correct)
}

func (s *memStore) Transaction(ctx context.Context, fn func(tx services.Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.data.clone()
	if err := fn(&memTx{data: work}); err != nil {
		return err
	}
	s.data = work
	return nil
}

type memTx struct {
	data *memData
}

func (t *memTx) FindMenu(_ context.Context, id uint) (*models.Menu, error) {
	m, ok := t.data.menus[id]
	if !ok {
		return nil, services.ErrMenuNotFound
	}
	return &m, nil
}

func (t *memTx) FindGame(_ context.Context, id uint) (*models.Game, error) {
	g, ok := t.data.games[id]
	if !ok {
		return nil, services.ErrGameNotFound
	}
	return &g, nil
}

func (t *memTx) FindOrder(_ context.Context, id uint) (*models.Order, error) {
	o, ok := t.data.orders[id]
	if !ok {
		return nil, services.ErrOrderNotFound
	}
	return &o, nil
}

func (t *memTx) CreateGame(_ context.Context, game *models.Game) error {
	t.data.nextID++
	game.ID = t.data.nextID
	t.data.games[game.ID] = *game
	return nil
}

func (t *memTx) CreateOrder(_ context.Context, order *models.Order) error {
	t.data.nextID++
	order.ID = t.data.nextID
	t.data.orders[order.ID] = *order
	return nil
}

func (t *memTx) UpdateGameScore(_ context.Context, gameID uint, delta int) error {
	g, ok := t.data.games[gameID]
	if !ok {
		return services.ErrGameNotFound
	}
	g.Score += delta
	t.data.games[gameID] = g
	return nil
}

func (t *memTx) MarkOrderTerminal(_ context.Context, orderID uint, correct bool) error {
	o, ok := t.data.orders[orderID]
	if !ok {
		return services.ErrOrderNotFound
	}
	if o.Status != models.OrderPending {
		return services.ErrAlreadyScored
	}
	o.Status = models.OrderIncorrect
	if correct {
		o.Status = models.OrderCorrect
	}
	o.IsCorrect = correct
	t.data.orders[orderID] = o
	return nil
}

func (t *memTx) Transaction(_ context.Context, fn func(tx services.Store) error) error {
	return fn(t)
}
