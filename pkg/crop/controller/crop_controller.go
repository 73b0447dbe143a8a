package controller

import "github.com/labstack/echo/v4"

type CropController interface {
	Create(c echo.Context) error
	List(c echo.Context) error
	Summary(c echo.Context) error
	Get(c echo.Context) error
	UpdateDates(c echo.Context) error
	UpdateStatus(c echo.Context) error
	Delete(c echo.Context) error
	Cycle(c echo.Context) error
	CycleLabel(c echo.Context) error
}
