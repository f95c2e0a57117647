package handler

import "github.com/labstack/echo/v4"

// Form payloads for the auth surface. Validation rules mirror the signup
// and login contracts: username 1–20 alphanumeric characters, syntactically
// valid email, non-empty password (capped at 20 characters on login).

type signupRequest struct {
	Username string `form:"username" validate:"required,alphanum,max=20"`
	Email    string `form:"email"    validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `form:"email"    validate:"required,email"`
	Password string `form:"password" validate:"required,max=20"`
}

const msgInvalidForm = "invalid form submission"

// msgBadCombination is shown for unknown email and wrong password alike.
const msgBadCombination = "Invalid email/password combination."

// signupForm and loginForm build the template data for the form pages.
// Every key the templates reference must be present, even when empty.

func signupForm(errMsg, username, email string) echo.Map {
	return echo.Map{"Error": errMsg, "Username": username, "Email": email}
}

func loginForm(errMsg, email string) echo.Map {
	return echo.Map{"Error": errMsg, "Email": email}
}
