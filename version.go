package dynurl

// Version is the released version of the dynurl module.
const Version = "0.3.0"
