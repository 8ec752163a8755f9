package web

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) Mount(r chi.Router) {
	authenticated := AuthenticatedMiddleware(h)
	r.Use(SessionMiddleware(h))

	r.Route("/", func(r chi.Router) {
		r.Post(SignUpRoute, SignUp(h))
		r.Post(LoginRoute, Login(h))
		r.Get("/logout", Logout(h))
		r.Handle("/settings", authenticated(Settings(h)))
	})

	r.Get("/users", ListUsers(h))
	r.Get("/profile/{username}", Profile(h))
	r.Handle("/profile", authenticated(UpdateProfile(h)))

	r.Route("/friends", func(r chi.Router) {
		r.Handle("/request", authenticated(SendRequest(h)))
		r.Handle("/accept", authenticated(AcceptRequest(h)))
		r.Handle("/decline", authenticated(DeclineRequest(h)))
	})

	r.Route("/favorites", func(r chi.Router) {
		r.Handle("/add", authenticated(AddFavorite(h)))
		r.Handle("/remove", authenticated(RemoveFavorite(h)))
	})

	r.Route("/topics", func(r chi.Router) {
		r.Get("/", GetTopics(h))
		r.Handle("/new", authenticated(CreateTopic(h)))
		r.Get("/{id}", GetTopic(h))
		r.Handle("/{id}/replies", authenticated(AddReply(h)))
	})

	r.Route("/games", func(r chi.Router) {
		r.Get("/", ListGames(h))
		r.Handle("/save", authenticated(SaveGame(h)))
		r.Get("/{id}", GetGame(h))
		r.Handle("/{id}/delete", authenticated(DeleteGame(h)))
	})

	r.Route("/maps", func(r chi.Router) {
		r.Get("/", ListMaps(h))
		r.Get("/{name}", GetMap(h))
		r.Handle("/{name}/save", authenticated(SaveMap(h)))
		r.Handle("/{name}/delete", authenticated(DeleteMap(h)))
	})
}
