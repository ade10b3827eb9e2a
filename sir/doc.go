// Package sir simulates Susceptible-Infected-Recovered epidemics on a
// core.Graph in discrete time.
//
// Each node carries a State:
//
//	Susceptible (0) -> Infected (1) -> Recovered (-1)
//
// Transitions are one-way and Recovered is terminal. One time step runs two
// passes against the state at the start of the step:
//
//  1. Infection: every discordant edge (one endpoint Infected, the other
//     Susceptible) transmits independently with probability Mu; a transmission
//     marks both endpoints Infected.
//  2. Recovery: every node Infected at the start of the step recovers
//     independently with probability Nu. Nodes infected during the step
//     cannot recover in that same step.
//
// A Model holds only Params. Prepare relabels a graph onto 0..n-1 once and
// returns a Network that can run any number of independent simulations;
// each Run draws from the *rand.Rand it is given, so runs with separate
// streams can execute concurrently.
package sir
