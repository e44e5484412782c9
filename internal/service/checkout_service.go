package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/oceanshop/storefront/config"
	"github.com/oceanshop/storefront/internal/domain"
	"github.com/oceanshop/storefront/internal/dto"
	"github.com/oceanshop/storefront/internal/repository"
	"github.com/oceanshop/storefront/pkg/errs"
	"github.com/oceanshop/storefront/pkg/utils"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"golang.org/x/sync/errgroup"
	"gopkg.in/gomail.v2"
)

type CheckoutServiceImpl struct {
	cartRepo      repository.CartRepository
	orderRepo     repository.OrderRepository
	config        *config.Config
	kafkaProducer *kafka.Conn
}

func CreateCheckoutService(cartRepo repository.CartRepository, orderRepo repository.OrderRepository, config *config.Config, kafkaProducer *kafka.Conn) CheckoutService {
	return &CheckoutServiceImpl{
		cartRepo:      cartRepo,
		orderRepo:     orderRepo,
		config:        config,
		kafkaProducer: kafkaProducer,
	}
}

// Checkout converts the current cart into a durable order and then clears the
// cart. Cart lines are only ever deleted after the order create has returned
// success: the order record must exist before any purchase data is destroyed.
func (s *CheckoutServiceImpl) Checkout(ctx context.Context, user *domain.User, req dto.CheckoutRequest) (resp dto.CheckoutResponse, err error) {
	if user == nil {
		return resp, errs.ErrNotLoggedIn
	}

	lines, err := s.cartRepo.GetCartLines(ctx)
	if err != nil {
		return resp, err
	}
	if len(lines) == 0 {
		return resp, errs.ErrEmptyCart
	}

	order := domain.Order{
		UserID: user.UID,
		Items:  lines,
		Total:  cartTotal(lines),
		Date:   time.Now().UTC().Format(time.RFC3339),
		Status: domain.OrderStatusCompleted,
	}

	created, err := s.orderRepo.AddOrder(ctx, order)
	if err != nil {
		return resp, err
	}

	// The order is now the authoritative record; cleanup is best-effort and
	// individual delete failures are not surfaced or retried. A stale line
	// stays visible until the next manual removal or checkout.
	g := new(errgroup.Group)
	for _, line := range lines {
		line := line
		g.Go(func() error {
			if err := s.cartRepo.DeleteCartLine(ctx, line.ID); err != nil {
				log.Error().Err(err).Str("component", "Checkout").Str("line_id", line.ID).Msg("cart cleanup failed")
			}
			return nil
		})
	}
	_ = g.Wait()

	remaining, err := s.cartRepo.GetCartLines(ctx)
	if err != nil {
		log.Error().Err(err).Str("component", "Checkout").Msg("cart re-fetch after checkout failed")
		remaining = []domain.CartLine{}
	}

	s.publishOrderCompleted(created)
	s.sendConfirmationEmail(user, created)

	resp.Order = created
	resp.Cart = remaining

	return resp, nil
}

func (s *CheckoutServiceImpl) publishOrderCompleted(order domain.Order) {
	if s.kafkaProducer == nil {
		return
	}

	kafkaMsg := dto.KafkaMessage{
		EventType: "order_completed",
		Data: dto.OrderCompletedEvent{
			OrderID: order.ID,
			UserID:  order.UserID,
			Total:   order.Total,
			Date:    order.Date,
		},
	}

	jsonMsg, err := json.Marshal(kafkaMsg)
	if err != nil {
		log.Error().Err(err).Str("component", "publishOrderCompleted").Msg("")
		return
	}

	if _, err := s.kafkaProducer.WriteMessages(kafka.Message{Key: []byte(order.ID), Value: jsonMsg}); err != nil {
		log.Error().Err(err).Str("component", "publishOrderCompleted").Msg("")
	}
}

func (s *CheckoutServiceImpl) sendConfirmationEmail(user *domain.User, order domain.Order) {
	if s.config == nil || s.config.SMTPConfig.Host == "" || user.Email == "" {
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.config.SMTPConfig.Sender)
	m.SetHeader("To", user.Email)
	m.SetHeader("Subject", "Your OceanShop order")
	m.SetBody("text/plain", fmt.Sprintf("Thank you for your purchase! Your order of %d item(s) totalling $%.2f has been completed.", len(order.Items), order.Total))

	if err := utils.SendEmail(m, s.config.SMTPConfig.Sender, s.config.SMTPConfig.Password, s.config.SMTPConfig.Host, s.config.SMTPConfig.Port); err != nil {
		log.Error().Err(err).Str("component", "sendConfirmationEmail").Msg("")
	}
}
