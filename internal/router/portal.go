package router

import (
	"github.com/deppfellow/portal-api/internal/handler"
	"github.com/deppfellow/portal-api/internal/middleware"
	"github.com/labstack/echo/v4"
)

// resource is the five-route CRUD surface shared by every portal entity.
type resource struct {
	path   string
	entity string
	create echo.HandlerFunc
	list   echo.HandlerFunc
	get    echo.HandlerFunc
	update echo.HandlerFunc
	delete echo.HandlerFunc
}

// mount registers the collection routes and, behind the id guard, the
// single-resource routes.
func (res resource) mount(g *echo.Group) {
	collection := g.Group(res.path)
	collection.POST("", res.create)
	collection.GET("", res.list)

	guard := middleware.RequireIDParam(res.entity)
	collection.GET("/:id", res.get, guard)
	collection.PATCH("/:id", res.update, guard)
	collection.DELETE("/:id", res.delete, guard)
}

func registerPortalRoutes(api *echo.Group, h *handler.Handlers) {
	resources := []resource{
		{
			path: "/customers", entity: "customer",
			create: h.Customers.CreateCustomer, list: h.Customers.ListCustomers,
			get: h.Customers.GetCustomer, update: h.Customers.UpdateCustomer, delete: h.Customers.DeleteCustomer,
		},
		{
			path: "/services", entity: "service",
			create: h.Services.CreateService, list: h.Services.ListServices,
			get: h.Services.GetService, update: h.Services.UpdateService, delete: h.Services.DeleteService,
		},
		{
			path: "/products", entity: "product",
			create: h.Products.CreateProduct, list: h.Products.ListProducts,
			get: h.Products.GetProduct, update: h.Products.UpdateProduct, delete: h.Products.DeleteProduct,
		},
		{
			path: "/payments", entity: "payment",
			create: h.Payments.CreatePayment, list: h.Payments.ListPayments,
			get: h.Payments.GetPayment, update: h.Payments.UpdatePayment, delete: h.Payments.DeletePayment,
		},
		{
			path: "/verifications", entity: "verification",
			create: h.Verifications.CreateVerification, list: h.Verifications.ListVerifications,
			get: h.Verifications.GetVerification, update: h.Verifications.UpdateVerification, delete: h.Verifications.DeleteVerification,
		},
		{
			path: "/sessions", entity: "session",
			create: h.Sessions.CreateSession, list: h.Sessions.ListSessions,
			get: h.Sessions.GetSession, update: h.Sessions.UpdateSession, delete: h.Sessions.DeleteSession,
		},
	}

	for _, res := range resources {
		res.mount(api)
	}
}
