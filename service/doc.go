// Package service defines the capability contract every issue tracker backend
// implements, the Item model returned by all backends, the tool descriptors
// a backend advertises and the backend error taxonomy.
package service
