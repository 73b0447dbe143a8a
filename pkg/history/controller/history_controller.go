package controller

import "github.com/labstack/echo/v4"

type HistoryController interface {
	Create(c echo.Context) error
	List(c echo.Context) error
	Stats(c echo.Context) error
	Fields(c echo.Context) error
}
