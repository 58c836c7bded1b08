package animals

import "fmt"

// Owner no tiene tabla propia; solo existe en memoria.
type Owner struct {
	Name  string
	Phone string
}

func (o Owner) String() string {
	return fmt.Sprintf("Dono [nome=%s, telefone=%s]", o.Name, o.Phone)
}
