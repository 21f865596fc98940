package internal

import (
	"net/http"
	"streamsched/internal/controllers"
	"streamsched/internal/providers"
)

func InitRoutes(scheduleController *controllers.ScheduleController, editorController *controllers.EditorController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/schedule", http.HandlerFunc(scheduleController.PublicSchedule))
	routers.Get("/schedule/working", http.HandlerFunc(scheduleController.Working))
	routers.Get("/schedule/day", http.HandlerFunc(scheduleController.Day))
	routers.Post("/schedule/add", http.HandlerFunc(scheduleController.Add))
	routers.Post("/schedule/edit", http.HandlerFunc(scheduleController.Edit))
	routers.Post("/schedule/delete", http.HandlerFunc(scheduleController.Delete))
	routers.Post("/schedule/reset", http.HandlerFunc(scheduleController.Reset))
	routers.Post("/schedule/save", http.HandlerFunc(scheduleController.Save))
	routers.Post("/schedule/load", http.HandlerFunc(scheduleController.Load))

	routers.Get("/editor", http.HandlerFunc(editorController.State))
	routers.Post("/editor/add", http.HandlerFunc(editorController.BeginAdd))
	routers.Post("/editor/edit", http.HandlerFunc(editorController.BeginEdit))
	routers.Post("/editor/draft", http.HandlerFunc(editorController.Draft))
	routers.Post("/editor/commit", http.HandlerFunc(editorController.Commit))
	routers.Post("/editor/cancel", http.HandlerFunc(editorController.Cancel))
	return routers
}
