// Package register implements the register model of the virtual machine.
//
// There are twenty registers, split into five classes of four: general
// (G1-G4), system (S1-S4), return (R1-R4), function (F1-F4) and internal
// function (IF1-IF4). A Register names any of them, and each class also has
// a narrower identity type naming only its own members. Narrowing from a
// Register to a class type fails with ErrConversion when the classes differ.
//
// All registers share one storage representation, the 64-bit signed Bank
// cell.
package register
