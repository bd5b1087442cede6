package orderrepo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/adapters/out/postgres/orderrepo"
	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/domain/model/kernel"
	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/domain/model/order"
	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.OrderID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker

	nextID int
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.StatusHistoryDTO{},
	))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE orders, order_items, order_status_history").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	// The order row and both child tables were written
	suite.assertCount(&orderrepo.OrderDTO{}, 1)
	suite.assertCount(&orderrepo.ItemDTO{}, 2)
	suite.assertCount(&orderrepo.StatusHistoryDTO{}, 1)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateID_ReturnsAlreadyExists() {
	ctx := context.Background()

	first := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	// Same identifier, different order
	second := suite.createTestOrderWithID(first.ID())
	err := suite.repository.Add(ctx, second)
	suite.Require().Error(err)

	var existsErr *errs.ObjectAlreadyExistsError
	suite.Require().ErrorAs(err, &existsErr)

	suite.assertCount(&orderrepo.OrderDTO{}, 1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTrip() {
	ctx := context.Background()

	original := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal("Asha Negi", retrieved.Customer().Name())
	suite.Equal("9876543210", retrieved.Customer().Phone().String())
	suite.Equal("asha@example.com", retrieved.Customer().Email())
	suite.Equal("12 Mall Road, Dehradun", retrieved.PickupAddress())
	// Empty delivery address fell back to the pickup address
	suite.Equal("12 Mall Road, Dehradun", retrieved.DeliveryAddress())
	suite.Equal(order.PaymentMethodCOD, retrieved.PaymentMethod())
	suite.Equal(order.PaymentStatusPending, retrieved.PaymentStatus())
	suite.Equal(order.StatusPending, retrieved.Status())

	suite.Require().Len(retrieved.Items(), 2)
	suite.Equal("shirt-wash", retrieved.Items()[0].ID())
	suite.True(retrieved.Items()[0].Price().Equal(decimal.NewFromInt(30)))
	suite.Equal(2, retrieved.Items()[0].Quantity())
	suite.True(retrieved.Amounts().Total().Equal(decimal.NewFromInt(160)))

	suite.Require().Len(retrieved.History(), 1)
	suite.Equal(order.StatusPending, retrieved.History()[0].Status())
	suite.Equal(order.InitialStatusNote, retrieved.History()[0].Note())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, suite.newOrderID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_AppendsHistory() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(
		testOrder.ChangeStatus(order.StatusConfirmed, "Called the customer", order.PolicyPermissive))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(order.StatusConfirmed, retrieved.Status())
	suite.Require().Len(retrieved.History(), 2)
	// The original entry survived the update untouched
	suite.Equal(order.StatusPending, retrieved.History()[0].Status())
	suite.Equal(order.InitialStatusNote, retrieved.History()[0].Note())
	suite.Equal(order.StatusConfirmed, retrieved.History()[1].Status())
	suite.Equal("Called the customer", retrieved.History()[1].Note())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_SuccessiveTransitions_KeepFullTrail() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Times(5)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	chain := []order.Status{
		order.StatusConfirmed,
		order.StatusPickedUp,
		order.StatusInProcess,
		order.StatusReady,
	}
	for _, next := range chain {
		suite.Require().NoError(testOrder.ChangeStatus(next, "", order.PolicyStrict))
		suite.Require().NoError(suite.repository.Update(ctx, testOrder))
	}

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(order.StatusReady, retrieved.Status())
	suite.Require().Len(retrieved.History(), 5)
	for i, next := range chain {
		suite.Equal(next, retrieved.History()[i+1].Status())
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	missing := suite.createTestOrder()

	err := suite.repository.Update(ctx, missing)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInStatus_FiltersByStatus() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.OrderID"), mock.Anything).Times(5)

	outForDelivery := 0
	for i := 0; i < 3; i++ {
		o := suite.createTestOrder()
		suite.Require().NoError(suite.repository.Add(ctx, o))

		if i < 2 {
			suite.Require().NoError(
				o.ChangeStatus(order.StatusOutForDelivery, "", order.PolicyPermissive))
			suite.Require().NoError(suite.repository.Update(ctx, o))
			outForDelivery++
		}
	}

	found, err := suite.repository.GetAllInStatus(ctx, order.StatusOutForDelivery)
	suite.Require().NoError(err)
	suite.Len(found, outForDelivery)
	for _, o := range found {
		suite.Equal(order.StatusOutForDelivery, o.Status())
	}

	pending, err := suite.repository.GetAllInStatus(ctx, order.StatusPending)
	suite.Require().NoError(err)
	suite.Len(pending, 1)

	delivered, err := suite.repository.GetAllInStatus(ctx, order.StatusDelivered)
	suite.Require().NoError(err)
	suite.Empty(delivered)

	suite.tracker.AssertExpectations(suite.T())
}

// newOrderID hands out sequential identifiers so tests never collide on the
// millisecond-derived candidates.
func (suite *OrderRepositoryIntegrationTestSuite) newOrderID() kernel.OrderID {
	suite.nextID++
	id, err := kernel.OrderIDFromString(fmt.Sprintf("%06d", suite.nextID))
	suite.Require().NoError(err)
	return id
}

// createTestOrder creates a basic test order with two line items.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	return suite.createTestOrderWithID(suite.newOrderID())
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrderWithID(id kernel.OrderID) *order.Order {
	shirt, err := order.NewItem("shirt-wash", "Shirt (Wash & Iron)", decimal.NewFromInt(30), 2, "wash")
	suite.Require().NoError(err)
	suit, err := order.NewItem("suit-dc", "Suit (Dry Clean)", decimal.NewFromInt(100), 1, "dryclean")
	suite.Require().NoError(err)

	amounts, err := order.NewAmounts(decimal.NewFromInt(160), decimal.Zero, decimal.NewFromInt(160))
	suite.Require().NoError(err)

	phone, err := kernel.NewPhone("9876543210")
	suite.Require().NoError(err)
	customer, err := order.NewCustomer("Asha Negi", phone, "asha@example.com")
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(id, []order.Item{shirt, suit}, amounts, customer,
		"12 Mall Road, Dehradun", "", order.PaymentMethodCOD, order.PaymentReference{}, "")
	suite.Require().NoError(err)
	return testOrder
}

// assertCount verifies the number of rows for the given model.
func (suite *OrderRepositoryIntegrationTestSuite) assertCount(model any, expected int) {
	var count int64
	err := suite.db.Model(model).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
