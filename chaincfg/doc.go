// Package chaincfg defines Dogecoin chain configuration parameters.
//
// Three networks are defined: the main network, the public test network, and
// the local regression-test network. These networks are incompatible with
// each other (each has a different genesis block and wire magic) and
// software should handle errors where input intended for one network is used
// on an application instance running on a different network.
//
// For main packages, a (typically global) var may be assigned the address of
// one of the standard Params vars for use as the application's "active"
// network.
//
//	package main
//
//	import (
//	        "flag"
//	        "fmt"
//
//	        "github.com/dogecoinfoundation/libdogecoin-sub000/chaincfg"
//	        "github.com/dogecoinfoundation/libdogecoin-sub000/keyaddr"
//	)
//
//	var testnet = flag.Bool("testnet", false, "operate on the Dogecoin test network")
//
//	// By default (without -testnet), use mainnet.
//	var chainParams = chaincfg.MainNetParams()
//
//	func main() {
//	        flag.Parse()
//
//	        if *testnet {
//	                chainParams = chaincfg.TestNetParams()
//	        }
//
//	        // later...
//	        addr := keyaddr.EncodeAddress(pubKeyHash, chainParams)
//	        fmt.Println(addr)
//	}
//
// If an application does not use one of the standard networks, a new Params
// value may be constructed which defines the parameters for the non-standard
// network. Such a value is not known to the ChainFromName/ChainFromMagic
// lookup helpers, which find only the three standard networks.
package chaincfg
