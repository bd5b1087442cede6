package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/adapters/out/email"
	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/adapters/out/postgres"
	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/adapters/out/sms"
	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/application/notifications"
	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/application/usecases/commands"
	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/application/usecases/queries"
	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/domain/model/order"
	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
	policy     order.TransitionPolicy
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	emailChannel, err := email.NewGomailChannel(email.Config{
		Host:          config.SMTPHost,
		Port:          atoiOrDefault(config.SMTPPort, 587),
		Username:      config.SMTPUser,
		Password:      config.SMTPPassword,
		From:          config.SMTPFrom,
		OperatorEmail: config.OperatorEmail,
		BusinessName:  config.BusinessName,
		BusinessPhone: config.BusinessPhone,
		WebsiteURL:    config.WebsiteURL,
	})
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("create email channel: %w", err)
	}

	smsChannel, err := sms.NewTwilioChannel(sms.Config{
		AccountSID:    config.TwilioAccountSID,
		AuthToken:     config.TwilioAuthToken,
		FromNumber:    config.TwilioPhoneNumber,
		OperatorPhone: config.OperatorPhone,
		BusinessName:  config.BusinessName,
		BusinessPhone: config.BusinessPhone,
		WebsiteURL:    config.WebsiteURL,
	})
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("create sms channel: %w", err)
	}

	timeout := time.Duration(atoiOrDefault(config.NotifyTimeoutSeconds, 0)) * time.Second
	notifier := notifications.NewOrchestrator(emailChannel, smsChannel, timeout, logger)

	policy := order.PolicyPermissive
	if strict, _ := strconv.ParseBool(config.StrictStatusTransitions); strict {
		policy = order.PolicyStrict
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifier,
		policy:     policy,
	}, nil
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.createUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.createUoWFactory(), c.notifier, c.policy)
}

func (c *CompositionRoot) CreateSendDeliveryRemindersCommandHandler() commands.SendDeliveryRemindersCommandHandler {
	return commands.NewSendDeliveryRemindersCommandHandler(c.createUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardStatsQueryHandler() queries.GetDashboardStatsQueryHandler {
	return queries.NewGetDashboardStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) createUoWFactory() commands.UnitOfWorkFactory {
	return FuncUnitOfWorkFactory(func() commands.UnitOfWork {
		return c.uowFactory.Create()
	})
}

type FuncUnitOfWorkFactory func() commands.UnitOfWork

func (f FuncUnitOfWorkFactory) Create() commands.UnitOfWork {
	return f()
}

func atoiOrDefault(raw string, fallback int) int {
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
