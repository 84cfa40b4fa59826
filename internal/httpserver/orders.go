package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fsj-lavagens/internal/export"
	orderrepo "fsj-lavagens/internal/repository/order"
	ordersvc "fsj-lavagens/internal/service/order"
)

type orderRequest struct {
	TractorPlate   string   `json:"tractorPlate" binding:"required"`
	TrailerPlates  []string `json:"trailerPlates"`
	SupplierID     string   `json:"supplierId" binding:"required"`
	Service        string   `json:"service" binding:"required"`
	Driver         string   `json:"driver"`
	Date           string   `json:"date"`
	StartTime      string   `json:"startTime"`
	EndTime        string   `json:"endTime"`
	Notes          string   `json:"notes"`
	PhotoReference string   `json:"photoReference"`
}

func createOrderHandler(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req orderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		createdBy := ""
		if claims := claimsFrom(c); claims != nil {
			createdBy = claims.Name
		}
		o, err := svc.Compose(c.Request.Context(), ordersvc.ComposeInput{
			TractorPlate:   req.TractorPlate,
			TrailerPlates:  req.TrailerPlates,
			SupplierID:     req.SupplierID,
			Service:        req.Service,
			Driver:         req.Driver,
			Date:           req.Date,
			StartTime:      req.StartTime,
			EndTime:        req.EndTime,
			Notes:          req.Notes,
			PhotoReference: req.PhotoReference,
			CreatedBy:      createdBy,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, o)
	}
}

func listOrdersHandler(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.List(c.Request.Context(), orderrepo.Filter{
			Date:   c.Query("date"),
			Status: c.Query("status"),
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

func exportOrdersHandler(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.List(c.Request.Context(), orderrepo.Filter{
			Date:   c.Query("date"),
			Status: c.Query("status"),
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="orders.csv"`)
		c.Header("Content-Type", "text/csv")
		if err := export.Orders(c.Writer, orders); err != nil {
			_ = c.Error(err)
		}
	}
}

func orderSummaryHandler(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := svc.Summary(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"summary": summary})
	}
}

// orderServicesHandler returns the price entries the caller can pick from
// for the given plate selection.
func orderServicesHandler(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		trailers, _ := strconv.Atoi(c.DefaultQuery("trailers", "0"))
		prices, err := svc.ServicesFor(c.Request.Context(), c.Query("supplierId"), c.Query("tractorPlate"), trailers)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"prices": prices})
	}
}

func getOrderHandler(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := svc.Get(c.Request.Context(), c.Param("number"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

func setOrderStatusHandler(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Status string `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := svc.SetStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func setOrderPhotoHandler(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			PhotoReference string `json:"photoReference"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := svc.SetPhoto(c.Request.Context(), c.Param("id"), req.PhotoReference); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func setOrderNotesHandler(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Notes string `json:"notes"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := svc.SetNotes(c.Request.Context(), c.Param("id"), req.Notes); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func setOrderTimesHandler(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			StartTime string `json:"startTime"`
			EndTime   string `json:"endTime"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := svc.SetTimes(c.Request.Context(), c.Param("id"), req.StartTime, req.EndTime); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
