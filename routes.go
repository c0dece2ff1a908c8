package main

import (
	"net/http"

	"gestaobikes/entities/bikes"
	"gestaobikes/entities/contacts"
	"gestaobikes/entities/report"
	"gestaobikes/entities/sales"
	"gestaobikes/middlewares"
)

func (a *app) reportHandler() *report.Handler {
	return &report.Handler{
		Contacts: a.store.Contacts,
		Sales:    a.store.Sales,
		Bikes:    a.store.Bikes,
		Logger:   a.logger,
		Location: a.cfg.Location,
		Now:      a.now,
	}
}

func (a *app) router() http.Handler {
	contactsHandler := &contacts.Handler{
		Contacts:     a.store.Contacts,
		StageChanges: a.store.StageChanges,
		Logger:       a.logger,
		Location:     a.cfg.Location,
		Now:          a.now,
	}
	bikesHandler := &bikes.Handler{
		Bikes:    a.store.Bikes,
		Cache:    a.cache,
		CacheTTL: a.cfg.CatalogCacheTTL,
		Logger:   a.logger,
	}
	salesHandler := &sales.Handler{
		Sales:    a.store.Sales,
		Bikes:    a.store.Bikes,
		Logger:   a.logger,
		Location: a.cfg.Location,
		Now:      a.now,
	}
	reportHandler := a.reportHandler()

	auth := middlewares.Auth(a.cfg.AuthSecret)
	private := func(h http.HandlerFunc) http.Handler {
		return auth(h)
	}

	mux := http.NewServeMux()

	mux.Handle("GET /v1/contacts", private(contactsHandler.GetAll))
	mux.Handle("GET /v1/contacts/board", private(contactsHandler.GetBoard))
	mux.Handle("GET /v1/contacts/{id}", private(contactsHandler.GetOne))
	mux.Handle("POST /v1/contacts", private(contactsHandler.CreateOne))
	mux.Handle("PUT /v1/contacts/{id}", private(contactsHandler.UpdateOne))
	mux.Handle("PATCH /v1/contacts/{id}/stage", private(contactsHandler.UpdateOneStage))
	mux.Handle("GET /v1/contacts/{id}/history", private(contactsHandler.GetHistory))

	mux.Handle("GET /v1/bikes", private(bikesHandler.GetAll))
	mux.Handle("GET /v1/bikes/{id}", private(bikesHandler.GetOne))
	mux.Handle("POST /v1/bikes", private(bikesHandler.CreateOne))
	mux.Handle("PUT /v1/bikes/{id}", private(bikesHandler.UpdateOne))
	mux.Handle("DELETE /v1/bikes/{id}", private(bikesHandler.DeleteOne))
	mux.HandleFunc("GET /v1/catalog", bikesHandler.GetCatalog)

	mux.Handle("GET /v1/sales", private(salesHandler.GetAll))
	mux.Handle("POST /v1/sales", private(salesHandler.CreateOne))
	mux.Handle("GET /v1/sales/summary", private(salesHandler.GetSummary))
	mux.Handle("GET /v1/sales/export", private(salesHandler.Export))

	mux.Handle("GET /v1/dashboard", private(reportHandler.GetDashboard))

	var handler http.Handler = mux
	handler = middlewares.Cors(a.cfg.Env, handler)
	handler = middlewares.SecurityHeaders(handler)
	handler = middlewares.Logger(a.logger)(handler)
	handler = middlewares.RequestID(handler)
	return handler
}
