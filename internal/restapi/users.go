package restapi

import "fmt"

// Geo is a latitude/longitude pair, serialized as strings by the API.
type Geo struct {
	Lat string `json:"lat"`
	Lng string `json:"lng"`
}

// Address is a user's postal address. The API serves the zip code under
// the "zipcode" key.
type Address struct {
	Street  string `json:"street"`
	Suite   string `json:"suite"`
	City    string `json:"city"`
	ZipCode string `json:"zipcode"`
	Geo     Geo    `json:"geo"`
}

// Company is the employer record attached to a user. The API uses
// camelCase for "catchPhrase".
type Company struct {
	Name        string `json:"name"`
	CatchPhrase string `json:"catchPhrase"`
	BS          string `json:"bs"`
}

// User is one record from the /users resource.
type User struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Address  Address `json:"address"`
	Phone    string  `json:"phone"`
	Website  string  `json:"website"`
	Company  Company `json:"company"`
}

// String renders the user as a compact single line for demo output.
func (u User) String() string {
	return fmt.Sprintf("#%d %s (%s) <%s> - %s, %s %s - %s",
		u.ID, u.Name, u.Username, u.Email,
		u.Address.Street, u.Address.City, u.Address.ZipCode,
		u.Company.Name,
	)
}
