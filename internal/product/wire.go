package product

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"voltline/internal/product/controller"
	"voltline/internal/product/repository"
	"voltline/internal/product/service"
	"voltline/internal/product/usecase"
)

func NewModule(db *mongo.Database, logger *zap.Logger) *controller.Controller {
	repo := repository.NewMongoProductRepository(db)
	svc := service.NewService(repo)
	uc := usecase.NewSearchUseCase(svc)
	return controller.NewController(uc, logger)
}
