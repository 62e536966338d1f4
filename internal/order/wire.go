package order

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"voltline/internal/config"
	"voltline/internal/order/controller"
	orderrepo "voltline/internal/order/repository"
	"voltline/internal/order/service"
	"voltline/internal/order/usecase"
	productrepo "voltline/internal/product/repository"
)

func NewModule(db *mongo.Database, cfg *config.Config, logger *zap.Logger) *controller.Controller {
	orderRepo := orderrepo.NewMongoOrderRepository(db)
	sequenceRepo := orderrepo.NewMongoSequenceRepository(db)
	productRepo := productrepo.NewMongoProductRepository(db)

	numbering := service.NewNumberingService(sequenceRepo, cfg.Order.NumberPrefix, logger)

	place := usecase.NewPlaceOrderUseCase(orderRepo, productRepo, numbering, logger)
	manage := usecase.NewManageOrdersUseCase(orderRepo, logger)

	return controller.NewController(place, manage, logger)
}
