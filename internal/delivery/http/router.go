package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"campustimetable/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes.
// requireAuth wraps every timetable route; the auth routes and Swagger UI are public.
func NewRouter(timetableController *controllers.TimetableController, authController *controllers.AuthController, requireAuth func(http.HandlerFunc) http.HandlerFunc) *http.ServeMux {
	mux := http.NewServeMux()

	// Auth
	mux.HandleFunc("POST /auth/signup", authController.SignUp)
	mux.HandleFunc("POST /auth/login", authController.Login)

	// Timetable
	mux.HandleFunc("GET /timetable", requireAuth(timetableController.GetTimetable))
	mux.HandleFunc("GET /timetable/{day}", requireAuth(timetableController.GetDay))
	mux.HandleFunc("POST /timetable/classes", requireAuth(timetableController.AddClass))
	mux.HandleFunc("PUT /timetable/{day}/{index}", requireAuth(timetableController.EditClass))
	mux.HandleFunc("DELETE /timetable/{day}/{index}", requireAuth(timetableController.DeleteClass))
	mux.HandleFunc("POST /timetable/moves", requireAuth(timetableController.MoveClass))
	mux.HandleFunc("POST /timetable/email", requireAuth(timetableController.EmailTimetable))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
