package controller

import "github.com/labstack/echo/v4"

type MachineController interface {
	Create(c echo.Context) error
	List(c echo.Context) error
	Summary(c echo.Context) error
	Get(c echo.Context) error
	Update(c echo.Context) error
	UploadImage(c echo.Context) error
	LogActivity(c echo.Context) error
	ExportReport(c echo.Context) error

	ScheduleMaintenance(c echo.Context) error
	Pending(c echo.Context) error
}
