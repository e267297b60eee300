package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/gallerist/gallery-api/docs"
	v1 "github.com/gallerist/gallery-api/internal/api/handler/v1"
	"github.com/gallerist/gallery-api/internal/api/middleware"
	"github.com/gallerist/gallery-api/internal/config"
	"github.com/gallerist/gallery-api/internal/domain"
	"github.com/gallerist/gallery-api/internal/repository"
	"github.com/gallerist/gallery-api/internal/repository/dao"
	"github.com/gallerist/gallery-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	userSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))

	authHandler := s.initAuthHandler(db)
	userHandler := v1.NewUserHandler(userSvc)
	artistHandler := s.initArtistHandler(db)
	artPieceHandler := s.initArtPieceHandler(db)
	exhibitionHandler := s.initExhibitionHandler(db)
	cartHandler := s.initCartHandler(db)
	orderHandler := s.initOrderHandler(db, userSvc)
	reportHandler := s.initReportHandler(db)

	s.MountHandlers(
		userSvc,
		authHandler,
		userHandler,
		artistHandler,
		artPieceHandler,
		exhibitionHandler,
		cartHandler,
		orderHandler,
		reportHandler,
	)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initArtistHandler(db *gorm.DB) *v1.ArtistHandler {
	artistDAO := dao.NewArtistDAO(db)
	repo := repository.NewArtistRepository(artistDAO)
	svc := service.NewArtistService(repo)
	handler := v1.NewArtistHandler(svc)

	return handler
}

func (s *Server) initArtPieceHandler(db *gorm.DB) *v1.ArtPieceHandler {
	pieceRepo := repository.NewArtPieceRepository(dao.NewArtPieceDAO(db))
	artistRepo := repository.NewArtistRepository(dao.NewArtistDAO(db))
	svc := service.NewArtPieceService(pieceRepo, artistRepo)
	handler := v1.NewArtPieceHandler(svc)

	return handler
}

func (s *Server) initExhibitionHandler(db *gorm.DB) *v1.ExhibitionHandler {
	repo := repository.NewExhibitionRepository(dao.NewExhibitionDAO(db))
	svc := service.NewExhibitionService(repo)
	handler := v1.NewExhibitionHandler(svc)

	return handler
}

func (s *Server) initCartHandler(db *gorm.DB) *v1.CartHandler {
	cartRepo := repository.NewCartRepository(dao.NewCartDAO(db))
	pieceRepo := repository.NewArtPieceRepository(dao.NewArtPieceDAO(db))
	svc := service.NewCartService(cartRepo, pieceRepo)
	handler := v1.NewCartHandler(svc)

	return handler
}

func (s *Server) initOrderHandler(db *gorm.DB, userSvc *service.UserService) *v1.OrderHandler {
	repo := repository.NewOrderRepository(dao.NewOrderDAO(db))
	svc := service.NewOrderService(repo)
	handler := v1.NewOrderHandler(svc, userSvc)

	return handler
}

func (s *Server) initReportHandler(db *gorm.DB) *v1.ReportHandler {
	repo := repository.NewReportRepository(dao.NewReportDAO(db))
	svc := service.NewReportService(repo)
	handler := v1.NewReportHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	userSvc *service.UserService,
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	artistHandler *v1.ArtistHandler,
	artPieceHandler *v1.ArtPieceHandler,
	exhibitionHandler *v1.ExhibitionHandler,
	cartHandler *v1.CartHandler,
	orderHandler *v1.OrderHandler,
	reportHandler *v1.ReportHandler,
) {
	const basePath = "/api/v1"

	verifyJWT := middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT()
	staffOnly := middleware.NewRoleGate(userSvc).Require(domain.RoleOwner, domain.RoleClerk)
	ownerOnly := middleware.NewRoleGate(userSvc).Require(domain.RoleOwner)

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	// Catalog browsing requires no account.
	catalog := s.Router.Group(basePath)
	{
		catalog.GET("/artists", artistHandler.HandleListArtists)
		catalog.GET("/artists/:artistID", artistHandler.HandleGetArtist)
		catalog.GET("/art-pieces", artPieceHandler.HandleListArtPieces)
		catalog.GET("/art-pieces/available", artPieceHandler.HandleListAvailableArtPieces)
		catalog.GET("/art-pieces/:artPieceID", artPieceHandler.HandleGetArtPiece)
		catalog.GET("/exhibitions", exhibitionHandler.HandleListExhibitions)
		catalog.GET("/exhibitions/:exhibitionID", exhibitionHandler.HandleGetExhibition)
		catalog.GET("/exhibitions/:exhibitionID/art-pieces", exhibitionHandler.HandleListExhibitionArt)
	}

	authed := s.Router.Group(basePath, verifyJWT)
	{
		authed.GET("/users/:userID", userHandler.HandleGetUser)
		authed.PUT("/users/me", userHandler.HandleUpdateProfile)
		authed.DELETE("/users/me", userHandler.HandleDeleteAccount)

		authed.POST("/exhibitions/:exhibitionID/registrations", exhibitionHandler.HandleRegister)

		authed.GET("/cart", cartHandler.HandleGetCart)
		authed.POST("/cart/items", cartHandler.HandleAddItem)
		authed.DELETE("/cart/items/:artPieceID", cartHandler.HandleRemoveItem)
		authed.POST("/cart/checkout", cartHandler.HandleCheckout)

		authed.GET("/orders/mine", orderHandler.HandleListMyOrders)
		authed.GET("/orders/:orderID", orderHandler.HandleGetOrder)
		authed.POST("/orders/:orderID/payments", orderHandler.HandlePay)
	}

	staff := s.Router.Group(basePath, verifyJWT, staffOnly)
	{
		staff.POST("/artists", artistHandler.HandleCreateArtist)
		staff.PUT("/artists/:artistID", artistHandler.HandleUpdateArtist)
		staff.DELETE("/artists/:artistID", artistHandler.HandleDeleteArtist)

		staff.POST("/art-pieces", artPieceHandler.HandleCreateArtPiece)
		staff.PUT("/art-pieces/:artPieceID", artPieceHandler.HandleUpdateArtPiece)
		staff.DELETE("/art-pieces/:artPieceID", artPieceHandler.HandleDeleteArtPiece)

		staff.POST("/exhibitions", exhibitionHandler.HandleCreateExhibition)
		staff.PUT("/exhibitions/:exhibitionID", exhibitionHandler.HandleUpdateExhibition)
		staff.DELETE("/exhibitions/:exhibitionID", exhibitionHandler.HandleDeleteExhibition)
		staff.POST("/exhibitions/:exhibitionID/art-pieces", exhibitionHandler.HandleAssignArt)
		staff.DELETE("/exhibitions/:exhibitionID/art-pieces/:artPieceID", exhibitionHandler.HandleRemoveArt)

		staff.GET("/registrations", exhibitionHandler.HandleListRegistrations)
		staff.GET("/orders", orderHandler.HandleListOrders)

		staff.GET("/reports/exhibition-registrations", reportHandler.HandleExhibitionRegistrations)
		staff.GET("/reports/art-availability", reportHandler.HandleArtAvailability)
	}

	owner := s.Router.Group(basePath, verifyJWT, ownerOnly)
	{
		owner.GET("/users", userHandler.HandleListUsers)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Gallery API"
	docs.SwaggerInfo.Description = "Art gallery management API."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
