// Package lint reports semantic problems in decoded mappings that decoding
// alone cannot catch, such as alias paths that point nowhere.
package lint
