package handlers

import (
	appointmentRepoPkg "randevio/database/repository/appointment"
	businessRepoPkg "randevio/database/repository/business"
	catalogRepoPkg "randevio/database/repository/catalog"
	galleryRepoPkg "randevio/database/repository/gallery"
	raffleRepoPkg "randevio/database/repository/raffle"
	requestRepoPkg "randevio/database/repository/request"
	reviewRepoPkg "randevio/database/repository/review"
	userRepoPkg "randevio/database/repository/user"
	appointmentSvc "randevio/services/appointment"
	availabilitySvc "randevio/services/availability"
	businessSvc "randevio/services/business"
	dashboardSvc "randevio/services/dashboard"
	mediaSvc "randevio/services/media"
	notificationSvc "randevio/services/notification"
	paymentSvc "randevio/services/payment"
	raffleSvc "randevio/services/raffle"
	requestSvc "randevio/services/requests"
	reviewSvc "randevio/services/review"
	userSvc "randevio/services/user"
	websiteSvc "randevio/services/website"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo    userRepoPkg.UserRepository
	RequestRepo requestRepoPkg.RequestRepository
	RaffleSvc   raffleSvc.RaffleService

	// Auth endpoints
	RegisterHandler       gin.HandlerFunc
	LoginHandler          gin.HandlerFunc
	MeHandler             gin.HandlerFunc
	UpdateFCMTokenHandler gin.HandlerFunc
	LogoutHandler         gin.HandlerFunc

	// Business console endpoints
	CreateBusinessHandler   gin.HandlerFunc
	GetMyBusinessHandler    gin.HandlerFunc
	UpdateBusinessHandler   gin.HandlerFunc
	SetWorkingHoursHandler  gin.HandlerFunc
	AddServiceHandler       gin.HandlerFunc
	ListServicesHandler     gin.HandlerFunc
	UpdateServiceHandler    gin.HandlerFunc
	DeleteServiceHandler    gin.HandlerFunc
	AddStaffHandler         gin.HandlerFunc
	ListStaffHandler        gin.HandlerFunc
	UpdateStaffHandler      gin.HandlerFunc
	DeleteStaffHandler      gin.HandlerFunc
	DashboardHandler        gin.HandlerFunc
	ListAppointmentsHandler gin.HandlerFunc
	UpdateAppointmentStatusHandler gin.HandlerFunc
	ListReviewsHandler      gin.HandlerFunc
	ReplyReviewHandler      gin.HandlerFunc
	UploadImageHandler      gin.HandlerFunc
	ListGalleryHandler      gin.HandlerFunc
	DeleteImageHandler      gin.HandlerFunc
	DrawRaffleHandler       gin.HandlerFunc
	ListRafflesHandler      gin.HandlerFunc
	CreatePaymentIntentHandler gin.HandlerFunc
	RequestPoolHandler      gin.HandlerFunc
	RespondToRequestHandler gin.HandlerFunc

	// Customer endpoints
	CreateRequestHandler    gin.HandlerFunc
	MyRequestsHandler       gin.HandlerFunc
	AcceptResponseHandler   gin.HandlerFunc
	RequestResponsesHandler gin.HandlerFunc

	// Public endpoints
	SiteHandler            gin.HandlerFunc
	AvailabilityHandler    gin.HandlerFunc
	BookAppointmentHandler gin.HandlerFunc
	CreateReviewHandler    gin.HandlerFunc
}

// NewHandlerBundle wires repositories into services and services into handlers.
func NewHandlerBundle() *HandlerBundle {
	users := userRepoPkg.NewMongoUserRepo()
	businesses := businessRepoPkg.NewMongoBusinessRepo()
	services := catalogRepoPkg.NewMongoServiceRepo()
	staff := catalogRepoPkg.NewMongoStaffRepo()
	appointments := appointmentRepoPkg.NewMongoAppointmentRepo()
	requests := requestRepoPkg.NewMongoRequestRepo()
	reviews := reviewRepoPkg.NewMongoReviewRepo()
	gallery := galleryRepoPkg.NewMongoGalleryRepo()
	raffles := raffleRepoPkg.NewMongoRaffleRepo()

	userService := &userSvc.DefaultUserService{Repo: users}
	businessService := &businessSvc.DefaultBusinessService{
		Repo:     businesses,
		Services: services,
		Staff:    staff,
	}
	availabilityService := &availabilitySvc.DefaultService{Repo: appointments}
	notifier := &notificationSvc.FCMNotifier{Users: users}
	appointmentService := &appointmentSvc.DefaultAppointmentService{
		Repo:         appointments,
		Businesses:   businesses,
		Services:     services,
		Availability: availabilityService,
		Notifier:     notifier,
	}
	requestService := &requestSvc.DefaultRequestService{
		Repo:     requests,
		Keywords: requestSvc.DefaultKeywordTable,
	}
	dashboardService := &dashboardSvc.DefaultService{Repo: appointments}
	reviewService := &reviewSvc.DefaultReviewService{
		Repo:         reviews,
		Appointments: appointments,
		Businesses:   businesses,
	}
	mediaService := &mediaSvc.DefaultMediaService{Repo: gallery}
	raffleService := &raffleSvc.DefaultRaffleService{
		Repo:         raffles,
		Appointments: appointments,
		Businesses:   businesses,
	}
	websiteService := &websiteSvc.DefaultWebsiteService{
		Businesses: businesses,
		Services:   services,
		Staff:      staff,
		Reviews:    reviews,
		Media:      mediaService,
	}
	paymentService := &paymentSvc.StripePaymentService{}

	return &HandlerBundle{
		UserRepo:    users,
		RequestRepo: requests,
		RaffleSvc:   raffleService,

		RegisterHandler:       RegisterHandler(userService),
		LoginHandler:          LoginHandler(userService),
		MeHandler:             MeHandler(userService),
		UpdateFCMTokenHandler: UpdateFCMTokenHandler(userService),
		LogoutHandler:         LogoutHandler(userService),

		CreateBusinessHandler:          CreateBusinessHandler(businessService),
		GetMyBusinessHandler:           GetMyBusinessHandler(businessService),
		UpdateBusinessHandler:          UpdateBusinessHandler(businessService),
		SetWorkingHoursHandler:         SetWorkingHoursHandler(businessService),
		AddServiceHandler:              AddServiceHandler(businessService),
		ListServicesHandler:            ListServicesHandler(businessService),
		UpdateServiceHandler:           UpdateServiceHandler(businessService),
		DeleteServiceHandler:           DeleteServiceHandler(businessService),
		AddStaffHandler:                AddStaffHandler(businessService),
		ListStaffHandler:               ListStaffHandler(businessService),
		UpdateStaffHandler:             UpdateStaffHandler(businessService),
		DeleteStaffHandler:             DeleteStaffHandler(businessService),
		DashboardHandler:               DashboardHandler(dashboardService, businessService),
		ListAppointmentsHandler:        ListAppointmentsHandler(appointmentService, businessService),
		UpdateAppointmentStatusHandler: UpdateAppointmentStatusHandler(appointmentService, businessService),
		ListReviewsHandler:             ListReviewsHandler(reviewService, businessService),
		ReplyReviewHandler:             ReplyReviewHandler(reviewService, businessService),
		UploadImageHandler:             UploadImageHandler(mediaService, businessService),
		ListGalleryHandler:             ListGalleryHandler(mediaService, businessService),
		DeleteImageHandler:             DeleteImageHandler(mediaService, businessService),
		DrawRaffleHandler:              DrawRaffleHandler(raffleService, businessService),
		ListRafflesHandler:             ListRafflesHandler(raffleService, businessService),
		CreatePaymentIntentHandler:     CreatePaymentIntentHandler(paymentService, businessService),
		RequestPoolHandler:             RequestPoolHandler(requestService, businessService),
		RespondToRequestHandler:        RespondToRequestHandler(requestService, businessService),

		CreateRequestHandler:    CreateRequestHandler(requestService),
		MyRequestsHandler:       MyRequestsHandler(requestService),
		AcceptResponseHandler:   AcceptResponseHandler(requestService),
		RequestResponsesHandler: RequestResponsesHandler(requestService),

		SiteHandler:            SiteHandler(websiteService),
		AvailabilityHandler:    AvailabilityHandler(availabilityService),
		BookAppointmentHandler: BookAppointmentHandler(appointmentService, businessService),
		CreateReviewHandler:    CreateReviewHandler(reviewService, businessService),
	}
}
