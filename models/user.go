package models

type User struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Avatar   string   `json:"avatar"`
	Balance  int      `json:"balance"`
	Vouchers []string `json:"vouchers"`
}

// DemoUser is the fixed account assigned by the login stub. There is no
// credential check and no logout path.
func DemoUser() User {
	return User{
		ID:       "fida1",
		Name:     "Fida Rana",
		Email:    "fida@fhr.com",
		Avatar:   "https://i.pravatar.cc/150?u=fida",
		Balance:  500000,
		Vouchers: []string{},
	}
}
