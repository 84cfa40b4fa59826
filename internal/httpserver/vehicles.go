package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fsj-lavagens/internal/export"
	"fsj-lavagens/internal/importer"
	vehiclesvc "fsj-lavagens/internal/service/vehicle"
)

type vehicleRequest struct {
	Plate     string `json:"plate" binding:"required"`
	Class     string `json:"vehicleClass" binding:"required"`
	MakeModel string `json:"makeModel"`
}

func listVehiclesHandler(svc *vehiclesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		vehicles, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"vehicles": vehicles})
	}
}

func exportVehiclesHandler(svc *vehiclesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		vehicles, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="vehicles.csv"`)
		c.Header("Content-Type", "text/csv")
		if err := export.Vehicles(c.Writer, vehicles); err != nil {
			_ = c.Error(err)
		}
	}
}

func createVehicleHandler(svc *vehiclesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req vehicleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		v, err := svc.Register(c.Request.Context(), req.Plate, req.Class, req.MakeModel)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, v)
	}
}

func updateVehicleHandler(svc *vehiclesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req vehicleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := svc.Update(c.Request.Context(), c.Param("id"), req.Plate, req.Class, req.MakeModel); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func deleteVehicleHandler(svc *vehiclesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// importVehiclesHandler accepts a multipart CSV upload under the "file"
// field. Spreadsheet users export to CSV first.
func importVehiclesHandler(svc *vehiclesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file field required"})
			return
		}
		f, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		defer f.Close()

		result, err := importer.NewCSVImporter(f, svc).Run(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
