package exchange

import (
	"time"

	"tradesdk/internal/model"
	"tradesdk/pkg/errors"
	"tradesdk/pkg/errors/ecode"
)

// orderStore 保存所有订单的最新快照，由 SimulatedExchange 加锁访问
type orderStore struct {
	orders map[string]model.Order
	ids    []string
}

func newOrderStore() *orderStore {
	return &orderStore{orders: make(map[string]model.Order)}
}

// create 生成订单，状态为 PLACED
func (s *orderStore) create(id string, req *model.PlaceOrderReq, now time.Time) model.Order {
	order := model.Order{
		OrderId:    id,
		Symbol:     req.Symbol,
		OrderType:  req.OrderType,
		OrderStyle: req.OrderStyle,
		Quantity:   req.Quantity,
		Status:     model.OrderPlaced,
		Timestamp:  now,
	}
	if req.Price != nil {
		p := *req.Price
		order.Price = &p
	}
	s.orders[id] = order
	s.ids = append(s.ids, id)
	return order
}

// put 替换已有订单的快照
func (s *orderStore) put(order model.Order) {
	s.orders[order.OrderId] = order
}

func (s *orderStore) get(id string) (model.Order, error) {
	order, ok := s.orders[id]
	if !ok {
		return model.Order{}, errors.Wrapf(model.ErrOrderNotFound, ecode.NotFoundErr, "order %s", id)
	}
	return order, nil
}

func (s *orderStore) list() []model.Order {
	out := make([]model.Order, 0, len(s.ids))
	for _, id := range s.ids {
		out = append(out, s.orders[id])
	}
	return out
}
