package controller

import "github.com/labstack/echo/v4"

type SimulationController interface {
	Profiles(c echo.Context) error
	UpsertProfile(c echo.Context) error
	Simulate(c echo.Context) error
	Compare(c echo.Context) error
}
