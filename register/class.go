package register

// General is a general purpose register identity.
type General Register

// System is a system register identity.
type System Register

// Return is a return register identity.
type Return Register

// Function is a function argument register identity.
type Function Register

// InternalFunction is an internal function register identity.
type InternalFunction Register

const (
	GENERAL_G1 = General(G1)
	GENERAL_G2 = General(G2)
	GENERAL_G3 = General(G3)
	GENERAL_G4 = General(G4)

	SYSTEM_S1 = System(S1)
	SYSTEM_S2 = System(S2)
	SYSTEM_S3 = System(S3)
	SYSTEM_S4 = System(S4)

	RETURN_R1 = Return(R1)
	RETURN_R2 = Return(R2)
	RETURN_R3 = Return(R3)
	RETURN_R4 = Return(R4)

	FUNCTION_F1 = Function(F1)
	FUNCTION_F2 = Function(F2)
	FUNCTION_F3 = Function(F3)
	FUNCTION_F4 = Function(F4)

	INTERNAL_FUNCTION_IF1 = InternalFunction(IF1)
	INTERNAL_FUNCTION_IF2 = InternalFunction(IF2)
	INTERNAL_FUNCTION_IF3 = InternalFunction(IF3)
	INTERNAL_FUNCTION_IF4 = InternalFunction(IF4)
)

func (r General) Super() Register          { return Register(r) }
func (r System) Super() Register           { return Register(r) }
func (r Return) Super() Register           { return Register(r) }
func (r Function) Super() Register         { return Register(r) }
func (r InternalFunction) Super() Register { return Register(r) }

func (r General) String() string          { return Register(r).String() }
func (r System) String() string           { return Register(r).String() }
func (r Return) String() string           { return Register(r).String() }
func (r Function) String() string         { return Register(r).String() }
func (r InternalFunction) String() string { return Register(r).String() }

// General narrows to a general register.
func (r Register) General() (out General, err error) {
	reg, err := Narrow(r, CLASS_GENERAL)
	out = General(reg)
	return
}

// System narrows to a system register.
func (r Register) System() (out System, err error) {
	reg, err := Narrow(r, CLASS_SYSTEM)
	out = System(reg)
	return
}

// Return narrows to a return register.
func (r Register) Return() (out Return, err error) {
	reg, err := Narrow(r, CLASS_RETURN)
	out = Return(reg)
	return
}

// Function narrows to a function register.
func (r Register) Function() (out Function, err error) {
	reg, err := Narrow(r, CLASS_FUNCTION)
	out = Function(reg)
	return
}

// InternalFunction narrows to an internal function register.
func (r Register) InternalFunction() (out InternalFunction, err error) {
	reg, err := Narrow(r, CLASS_INTERNAL_FUNCTION)
	out = InternalFunction(reg)
	return
}
