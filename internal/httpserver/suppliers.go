package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fsj-lavagens/internal/export"
	suppliersvc "fsj-lavagens/internal/service/supplier"
)

type supplierRequest struct {
	Name    string `json:"name" binding:"required"`
	TaxID   string `json:"taxId" binding:"required"`
	Address string `json:"address"`
}

type priceRequest struct {
	Class       string `json:"vehicleClass" binding:"required"`
	Service     string `json:"service" binding:"required"`
	AmountCents int64  `json:"amountCents" binding:"required"`
	SupplierID  string `json:"supplierId"`
}

func listSuppliersHandler(svc *suppliersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		suppliers, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"suppliers": suppliers})
	}
}

func exportSuppliersHandler(svc *suppliersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		suppliers, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="suppliers.csv"`)
		c.Header("Content-Type", "text/csv")
		if err := export.Suppliers(c.Writer, suppliers); err != nil {
			_ = c.Error(err)
		}
	}
}

func createSupplierHandler(svc *suppliersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req supplierRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		s, err := svc.Register(c.Request.Context(), req.Name, req.TaxID, req.Address)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, s)
	}
}

func updateSupplierHandler(svc *suppliersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req supplierRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := svc.Update(c.Request.Context(), c.Param("id"), req.Name, req.TaxID, req.Address); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func deleteSupplierHandler(svc *suppliersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func listPricesHandler(svc *suppliersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		prices, err := svc.ListPrices(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"prices": prices})
	}
}

func exportPricesHandler(svc *suppliersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		prices, err := svc.ListPrices(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="prices.csv"`)
		c.Header("Content-Type", "text/csv")
		if err := export.Prices(c.Writer, prices); err != nil {
			_ = c.Error(err)
		}
	}
}

func addPriceHandler(svc *suppliersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req priceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		p, err := svc.AddPrice(c.Request.Context(), c.Param("id"), req.Class, req.Service, req.AmountCents)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

func updatePriceHandler(svc *suppliersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req priceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := svc.UpdatePrice(c.Request.Context(), c.Param("id"), req.SupplierID, req.Class, req.Service, req.AmountCents); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func deletePriceHandler(svc *suppliersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeletePrice(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
