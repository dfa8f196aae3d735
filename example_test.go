package ns_test

import (
	"fmt"

	ns "github.com/0xalexb/hjarta-ns"
)

// Mailer is a service registered through a factory.
type Mailer struct {
	Host   string
	Sender string
}

func ExampleRegistry_Register() {
	reg := ns.New()

	reg.MustRegister("a", map[string]any{"aa": "aa"})
	fmt.Println(reg.Modules())

	reg.MustRegister("a", "scalar")
	fmt.Println(reg.Modules())
	// Output:
	// map[a:map[aa:aa]]
	// map[a:scalar]
}

func ExampleRegistry_Register_factory() {
	reg := ns.New(
		ns.WithArguments("noreply@example.com"),
		ns.WithContext("production"),
	)

	reg.MustRegister("services.mailer", func(env any, args ...any) (any, error) {
		host, _ := args[0].(string)
		sender, _ := args[1].(string)

		fmt.Printf("building mailer for %v\n", env)

		return &Mailer{Host: host, Sender: sender}, nil
	}, "smtp.example.com")

	mailer, _ := reg.Resolve("services.mailer").(*Mailer)
	fmt.Printf("%s via %s\n", mailer.Sender, mailer.Host)
	// Output:
	// building mailer for production
	// noreply@example.com via smtp.example.com
}

func ExampleRegistry_Resolve() {
	reg := ns.New(ns.WithDelimiter("/"))

	reg.Resolve("app/services/cache")
	fmt.Println(reg.Modules())
	// Output: map[app:map[services:map[cache:map[]]]]
}

func ExampleRegistry_NoConflict() {
	original := ns.Default()

	reg := ns.New()
	ns.SetDefault(reg)

	ns.MustRegister("feature.enabled", true)
	fmt.Println(reg.Resolve("feature.enabled"))

	reg.NoConflict()
	fmt.Println(ns.Default() == original)
	// Output:
	// true
	// true
}
