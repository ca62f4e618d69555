package handlers

import (
	"net/http"
	"strconv"

	"randevio/middleware"
	"randevio/models"
	businessService "randevio/services/business"
	requestService "randevio/services/requests"

	"github.com/gin-gonic/gin"
)

// CreateRequestHandler posts a customer service request.
func CreateRequestHandler(svc requestService.RequestService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ServiceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		req.UserID = c.GetString(middleware.CtxUserID)

		request, err := svc.CreateRequest(req)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, request)
	}
}

// MyRequestsHandler lists the customer's requests with their responses.
func MyRequestsHandler(svc requestService.RequestService) gin.HandlerFunc {
	return func(c *gin.Context) {
		requests, err := svc.ListMine(c.GetString(middleware.CtxUserID))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"serviceRequests": requests})
	}
}

// RequestPoolHandler returns the owner's request listing for a view mode
// (active, responded or accepted).
func RequestPoolHandler(svc requestService.RequestService, businesses businessService.BusinessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		business := ownBusiness(c, businesses)
		if business == nil {
			return
		}
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

		pool, err := svc.MatchPool(business, c.DefaultQuery("mode", requestService.ViewActive), page, limit)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, pool)
	}
}

// RespondToRequestHandler records the owner's offer against a request.
func RespondToRequestHandler(svc requestService.RequestService, businesses businessService.BusinessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		business := ownBusiness(c, businesses)
		if business == nil {
			return
		}
		var req models.ServiceRequestResponse
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		response, err := svc.Respond(business, c.Param("id"), req)
		if err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, response)
	}
}

// AcceptResponseHandler lets the requesting customer accept one offer.
func AcceptResponseHandler(svc requestService.RequestService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.CtxUserID)
		if err := svc.Accept(userID, c.Param("id"), c.Param("responseId")); err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// RequestResponsesHandler lists a request's offers and marks them seen.
func RequestResponsesHandler(svc requestService.RequestService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.CtxUserID)
		responses, err := svc.ViewResponses(userID, c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"responses": responses})
	}
}
