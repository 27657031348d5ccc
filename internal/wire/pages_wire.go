package wire

import (
	"coffee-directory/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePages(r chi.Router, pages *adaptor.PagesHandler) {
	r.Get("/", pages.Home)
	r.Get("/login.html", pages.Login)
	r.Get("/signup.html", pages.Signup)
	r.Get("/about.html", pages.About)
	r.Get("/learnmore.html", pages.LearnMore)
	r.Get("/menu/{shop_id}", pages.Menu)
	r.Get("/user.html", pages.UserLanding)
	r.Get("/manager.html", pages.ManagerLanding)
	r.Get("/admin.html", pages.AdminLanding)
}
