package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/eventpass/eventpass-api/docs"
	v1 "github.com/eventpass/eventpass-api/internal/api/handler/v1"
	"github.com/eventpass/eventpass-api/internal/api/middleware"
	"github.com/eventpass/eventpass-api/internal/config"
	"github.com/eventpass/eventpass-api/internal/repository"
	"github.com/eventpass/eventpass-api/internal/repository/dao"
	"github.com/eventpass/eventpass-api/internal/service"
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

	authenticator := s.initAuthenticator(db)
	hotelHandler := s.initHotelHandler(db)
	enrollmentHandler := s.initEnrollmentHandler(db)
	ticketHandler := s.initTicketHandler(db)
	s.MountHandlers(authenticator, hotelHandler, enrollmentHandler, ticketHandler)

	return s
}

func (s *Server) initAuthenticator(db *gorm.DB) *middleware.Authenticator {
	sessionDAO := dao.NewSessionDAO(db)
	repo := repository.NewSessionRepository(sessionDAO)
	svc := service.NewSessionService(repo)

	return middleware.NewAuthenticator(s.Config.API.JWTSigningKey, svc)
}

func (s *Server) initHotelHandler(db *gorm.DB) *v1.HotelHandler {
	enrollmentRepo := repository.NewEnrollmentRepository(dao.NewEnrollmentDAO(db))
	ticketRepo := repository.NewTicketRepository(dao.NewTicketDAO(db))
	entitlements := service.NewEntitlementService(enrollmentRepo, ticketRepo)

	hotelRepo := repository.NewHotelRepository(dao.NewHotelDAO(db))
	svc := service.NewHotelService(hotelRepo, entitlements)

	return v1.NewHotelHandler(svc)
}

func (s *Server) initEnrollmentHandler(db *gorm.DB) *v1.EnrollmentHandler {
	repo := repository.NewEnrollmentRepository(dao.NewEnrollmentDAO(db))
	svc := service.NewEnrollmentService(repo)

	return v1.NewEnrollmentHandler(svc)
}

func (s *Server) initTicketHandler(db *gorm.DB) *v1.TicketHandler {
	ticketRepo := repository.NewTicketRepository(dao.NewTicketDAO(db))
	enrollmentRepo := repository.NewEnrollmentRepository(dao.NewEnrollmentDAO(db))
	svc := service.NewTicketService(ticketRepo, enrollmentRepo)

	return v1.NewTicketHandler(svc)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(authenticator *middleware.Authenticator, hotelHandler *v1.HotelHandler, enrollmentHandler *v1.EnrollmentHandler, ticketHandler *v1.TicketHandler) {
	authed := s.Router.Group("", authenticator.VerifyJWT())
	{
		authed.GET("/hotels", hotelHandler.HandleGetHotels)
		authed.GET("/hotels/:hotelId", hotelHandler.HandleGetHotelByID)

		authed.GET("/enrollments", enrollmentHandler.HandleGetEnrollment)
		authed.POST("/enrollments", enrollmentHandler.HandleUpsertEnrollment)

		authed.GET("/tickets", ticketHandler.HandleGetTicket)
		authed.POST("/tickets", ticketHandler.HandleReserveTicket)
		authed.GET("/tickets/types", ticketHandler.HandleListTicketTypes)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.Title = "EventPass API"
	docs.SwaggerInfo.Description = "Event enrollment, ticketing and hotel booking backend."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
