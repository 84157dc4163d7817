// Package storage handles uploaded place images on the local filesystem.
//
// Files are stored under a configured directory with random names so that
// uploads can never collide or traverse outside the upload root. Only jpg,
// jpeg and png uploads are accepted.
package storage
